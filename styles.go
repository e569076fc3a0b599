// This file is part of n64cic.
//
// n64cic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64cic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64cic.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ecpkart64/n64cic/hardware/cic/pif"
)

// styles used in the session transcript. lipgloss drops the colours when the
// output is not a terminal.
var (
	styleLabel   = lipgloss.NewStyle().Bold(true)
	styleMarker  = lipgloss.NewStyle().Faint(true)
	styleToCIC   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6))
	styleFromCIC = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3))
	styleGood    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2))
	styleBad     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1))
)

func directionStyle(d pif.Direction) lipgloss.Style {
	if d == pif.ToCIC {
		return styleToCIC
	}
	return styleFromCIC
}
