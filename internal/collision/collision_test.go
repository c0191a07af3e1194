package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGroupsAreDisjoint(t *testing.T) {
	r := NewRegistry()

	assert.Zero(t, r.Container&r.Sphere)
	assert.Zero(t, r.Container&r.Box)
	assert.Zero(t, r.Sphere&r.Box)

	for _, g := range r.Groups() {
		assert.False(t, g.Overlaps(Default), "group %b overlaps Default", g)
	}
}

func TestRegistryIsDeterministic(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	require.Equal(t, a, b)
	assert.Equal(t, Group(1), a.Container)
	assert.Equal(t, Group(2), a.Sphere)
	assert.Equal(t, Group(4), a.Box)
}

func TestFilterMasks(t *testing.T) {
	r := NewRegistry()

	f := NewFilter(r.Sphere)
	assert.Equal(t, r.Sphere, f.Group)
	assert.Equal(t, All, f.Mask)
	assert.True(t, f.Accepts(r.Box))
	assert.True(t, f.Accepts(r.Container))

	narrow := f.Narrow(r.Sphere)
	assert.True(t, narrow.Accepts(r.Sphere))
	assert.False(t, narrow.Accepts(r.Box))
	assert.False(t, narrow.Accepts(r.Container))
	assert.Equal(t, All, f.Mask, "Narrow must not mutate the receiver")
}

func TestCanCollide(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name string
		a, b Filter
		want bool
	}{
		{"both match all", NewFilter(r.Sphere), NewFilter(r.Box), true},
		{"one side excludes", NewFilter(r.Sphere).Narrow(r.Container), NewFilter(r.Box), false},
		{"mutual narrow", NewFilter(r.Sphere).Narrow(r.Container), NewFilter(r.Container).Narrow(r.Sphere), true},
		{"zero mask", Filter{Group: r.Box, Mask: 0}, NewFilter(r.Container), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCollide(tt.a, tt.b))
			assert.Equal(t, tt.want, CanCollide(tt.b, tt.a))
		})
	}
}
