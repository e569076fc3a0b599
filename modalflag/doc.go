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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which can have its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and are then parsed,
// one layer at a time, with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VECTORS", "VERSION")
//	_, _ = md.Parse()
//
// The first non-flag argument is compared to the list of sub-modes, without
// regard to case. The first sub-mode in the list is the default and is chosen
// if the argument matches none of them. Mode() returns the selected mode.
//
// The next layer is parsed after calling NewMode(). Flags for the new layer
// are added before calling Parse() again:
//
//	md.NewMode()
//	region := md.AddString("region", "NTSC", "console region")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseError:
//		return err
//	case modalflag.ParseHelp:
//		return nil
//	}
//
// Values that need parsing can be added with AddVar() and any type that
// implements the flag.Value interface.
//
// Help for the current layer is printed to the Output field when the -help
// flag is present. ParseHelp is returned in that case and the caller should
// stop processing arguments.
package modalflag
