/*
Copyright © 2024 The saport authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package maxflow

// ErrInvalidNetwork wraps the specific reason a network was rejected, such
// as an undefined or coincident source/sink, or a negative edge capacity.
type ErrInvalidNetwork struct {
	Reason string
}

func (e *ErrInvalidNetwork) Error() string {
	return "maxflow: invalid network: " + e.Reason
}

func invalidNetwork(reason string) error {
	return &ErrInvalidNetwork{Reason: reason}
}
