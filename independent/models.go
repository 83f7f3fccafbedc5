/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package independent

import "fmt"

// MassModel selects the initial mass function of the primaries.
type MassModel int

const (
	// Kroupa93 is the three-segment power law of Kroupa, Tout & Gilmore
	// (1993), normalised as in Hurley et al. (2002), on [0.1, 150] Msun.
	Kroupa93 MassModel = iota + 1
	// Salpeter55 is the x^-2.35 power law of Salpeter (1955)
	// on [0.08, 150] Msun.
	Salpeter55
)

func (m MassModel) String() string {
	switch m {
	case Kroupa93:
		return "kroupa93"
	case Salpeter55:
		return "salpeter55"
	default:
		return fmt.Sprintf("MassModel(%d)", int(m))
	}
}

// ParseMassModel returns the MassModel called name.
func ParseMassModel(name string) (MassModel, error) {
	switch name {
	case "kroupa93":
		return Kroupa93, nil
	case "salpeter55":
		return Salpeter55, nil
	default:
		return 0, unknownModel("primary mass", fmt.Sprintf("%q", name))
	}
}

// EccModel selects the eccentricity distribution.
type EccModel int

const (
	// Thermal has density proportional to e (Heggie 1975).
	Thermal EccModel = iota + 1
	// Uniform is flat on [0, 1).
	Uniform
)

func (m EccModel) String() string {
	switch m {
	case Thermal:
		return "thermal"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("EccModel(%d)", int(m))
	}
}

// ParseEccModel returns the EccModel called name.
func ParseEccModel(name string) (EccModel, error) {
	switch name {
	case "thermal":
		return Thermal, nil
	case "uniform":
		return Uniform, nil
	default:
		return 0, unknownModel("eccentricity", fmt.Sprintf("%q", name))
	}
}

// SFHModel selects the star formation history of the Galactic
// component the population belongs to.
type SFHModel int

const (
	// Const forms stars at a constant rate over the component age.
	Const SFHModel = iota + 1
	// Burst forms stars at a constant rate during the first 1000 Myr
	// of the component.
	Burst
	// DeltaBurst forms every star when the component forms.
	DeltaBurst
)

func (m SFHModel) String() string {
	switch m {
	case Const:
		return "const"
	case Burst:
		return "burst"
	case DeltaBurst:
		return "delta_burst"
	default:
		return fmt.Sprintf("SFHModel(%d)", int(m))
	}
}

// ParseSFHModel returns the SFHModel called name.
func ParseSFHModel(name string) (SFHModel, error) {
	switch name {
	case "const":
		return Const, nil
	case "burst":
		return Burst, nil
	case "delta_burst":
		return DeltaBurst, nil
	default:
		return 0, unknownModel("star formation history", fmt.Sprintf("%q", name))
	}
}

// BinaryModel selects the binary fraction.
type BinaryModel int

const (
	// Half pairs every primary with probability 1/2.
	Half BinaryModel = iota + 1
	// VanHaaften uses the primary-mass dependent fraction
	// 1/2 + log10(m)/4 of van Haaften et al. (2013). It is only
	// meaningful up to 100 Msun.
	VanHaaften
)

func (m BinaryModel) String() string {
	switch m {
	case Half:
		return "half"
	case VanHaaften:
		return "vanHaaften"
	default:
		return fmt.Sprintf("BinaryModel(%d)", int(m))
	}
}

// ParseBinaryModel returns the BinaryModel called name.
func ParseBinaryModel(name string) (BinaryModel, error) {
	switch name {
	case "half":
		return Half, nil
	case "vanHaaften":
		return VanHaaften, nil
	default:
		return 0, unknownModel("binary fraction", fmt.Sprintf("%q", name))
	}
}
