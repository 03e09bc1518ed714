// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import (
	"math/rand"
	"testing"
)

func BenchmarkWrap(b *testing.B) {
	s := randStringRunes(10)

	b.ResetTimer()

	for b.Loop() {
		Wrap(s, FgRed)
	}
}

func BenchmarkWrapExtended(b *testing.B) {
	s := randStringRunes(10)

	b.ResetTimer()

	for b.Loop() {
		Wrap(s, Bold, FgExtended, ByRGB, 242, 242, 242)
	}
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}

	return string(b)
}
