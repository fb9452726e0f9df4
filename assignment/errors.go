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

package assignment

// ErrInvalidInput wraps the specific reason an assignment problem was
// rejected, such as a non-rectangular cost matrix.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return "assignment: invalid input: " + e.Reason
}

func invalidInput(reason string) error {
	return &ErrInvalidInput{Reason: reason}
}
