// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"strings"

	"cogentcore.org/material/grr"
)

// Role is one of the named colors of a [Scheme]. The order of the
// roles is stable and is the order of [Scheme.Roles].
type Role int32

const (
	// Primary is the primary color applied to important elements
	Primary Role = iota

	// OnPrimary is the color applied to content on top of Primary
	OnPrimary

	// PrimaryContainer is applied to elements with less emphasis than Primary
	PrimaryContainer

	// OnPrimaryContainer is applied to content on top of PrimaryContainer
	OnPrimaryContainer

	// Secondary is applied to less important elements
	Secondary

	// OnSecondary is applied to content on top of Secondary
	OnSecondary

	// SecondaryContainer is applied to elements with less emphasis than Secondary
	SecondaryContainer

	// OnSecondaryContainer is applied to content on top of SecondaryContainer
	OnSecondaryContainer

	// Tertiary is applied as an accent to highlight elements
	Tertiary

	// OnTertiary is applied to content on top of Tertiary
	OnTertiary

	// TertiaryContainer is applied to elements with less emphasis than Tertiary
	TertiaryContainer

	// OnTertiaryContainer is applied to content on top of TertiaryContainer
	OnTertiaryContainer

	// Error is applied to elements that indicate an error or danger
	Error

	// OnError is applied to content on top of Error
	OnError

	// ErrorContainer is applied to elements with less emphasis than Error
	ErrorContainer

	// OnErrorContainer is applied to content on top of ErrorContainer
	OnErrorContainer

	// Surface is applied to contained areas, like the background of an app
	Surface

	// OnSurface is applied to content on top of Surface elements
	OnSurface

	// OnSurfaceVariant is applied to lower emphasis content on top of surfaces
	OnSurfaceVariant

	// SurfaceContainerLowest is the surface container with the lowest emphasis
	SurfaceContainerLowest

	// SurfaceContainerLow is the surface container with lower emphasis
	SurfaceContainerLow

	// SurfaceContainer is applied to containers that contrast with Surface
	SurfaceContainer

	// SurfaceContainerHigh is the surface container with higher emphasis
	SurfaceContainerHigh

	// SurfaceContainerHighest is the surface container with the highest emphasis
	SurfaceContainerHighest

	// Outline is applied to borders that need sufficient contrast
	Outline

	// OutlineVariant is applied to decorative boundaries
	OutlineVariant

	// InverseSurface is applied to elements with the reverse color of their surroundings
	InverseSurface

	// InverseOnSurface is applied to content on top of InverseSurface
	InverseOnSurface

	// Scrim is applied to scrims (semi-transparent overlays)
	Scrim

	// Shadow is applied to shadows
	Shadow

	RolesN
)

var roleNames = [RolesN]string{
	"primary",
	"on_primary",
	"primary_container",
	"on_primary_container",
	"secondary",
	"on_secondary",
	"secondary_container",
	"on_secondary_container",
	"tertiary",
	"on_tertiary",
	"tertiary_container",
	"on_tertiary_container",
	"error",
	"on_error",
	"error_container",
	"on_error_container",
	"surface",
	"on_surface",
	"on_surface_variant",
	"surface_container_lowest",
	"surface_container_low",
	"surface_container",
	"surface_container_high",
	"surface_container_highest",
	"outline",
	"outline_variant",
	"inverse_surface",
	"inverse_on_surface",
	"scrim",
	"shadow",
}

// String returns the snake_case name of the role, for example "on_primary".
func (r Role) String() string {
	if r < 0 || r >= RolesN {
		return "Role(?)"
	}
	return roleNames[r]
}

// RoleString returns the role with the given snake_case name.
// Kebab case and camel case names are also accepted.
func RoleString(s string) (Role, error) {
	key := strings.ReplaceAll(strings.ToLower(s), "-", "_")
	for i, n := range roleNames {
		if n == key || strings.ReplaceAll(n, "_", "") == key {
			return Role(i), nil
		}
	}
	return 0, &grr.ParseError{Kind: "color role", Input: s}
}

// RoleValues returns all roles in order.
func RoleValues() []Role {
	rs := make([]Role, RolesN)
	for i := range rs {
		rs[i] = Role(i)
	}
	return rs
}

// MarshalText implements [encoding.TextMarshaler].
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Role) UnmarshalText(text []byte) error {
	v, err := RoleString(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
