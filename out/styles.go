// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/ChrisCheang/Bladeless-Drone-DMT/mdl/impeller"
)

// GetColor returns the line color used for a swept quantity
func GetColor(key string) string {
	switch key {
	case impeller.KeyOmega:
		return "b"
	case impeller.KeyPower:
		return "r"
	case impeller.KeyThrust:
		return "g"
	}
	return "k"
}
