// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package fragment splits documents into fragments
// and delivers them the way a token-streaming producer would.
package fragment

import (
	"context"
	"math/rand"
	"time"
	"unicode/utf8"
)

// Default fragment lengths, in bytes.
const (
	DefaultMin = 2
	DefaultMax = 20
)

// Split divides s into consecutive fragments
// whose lengths are chosen uniformly from [minLen, maxLen].
// The last fragment may be shorter.
// Fragments never split a UTF-8 encoded character,
// so a fragment may be longer than maxLen by up to 3 bytes.
// If rng is nil, a source seeded from the current time is used.
func Split(s string, minLen, maxLen int, rng *rand.Rand) []string {
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var frags []string
	for len(s) > 0 {
		n := minLen + rng.Intn(maxLen-minLen+1)
		n = runeBoundary(s, n)
		frags = append(frags, s[:n])
		s = s[n:]
	}
	return frags
}

// SplitEvery divides s into fragments of n bytes.
// The last fragment may be shorter.
func SplitEvery(s string, n int) []string {
	if n < 1 {
		n = 1
	}
	var frags []string
	for len(s) > 0 {
		end := runeBoundary(s, n)
		frags = append(frags, s[:end])
		s = s[end:]
	}
	return frags
}

// runeBoundary returns the smallest index >= n that is either len(s)
// or the start of a UTF-8 sequence.
func runeBoundary(s string, n int) int {
	if n >= len(s) {
		return len(s)
	}
	for n < len(s) && !utf8.RuneStart(s[n]) {
		n++
	}
	return n
}

// Stream calls deliver with each fragment in order,
// waiting interval between calls.
// A non-positive interval delivers fragments without waiting.
// If ctx is canceled, Stream stops delivering
// and returns the context's error.
func Stream(ctx context.Context, frags []string, interval time.Duration, deliver func(string)) error {
	if interval <= 0 {
		for _, frag := range frags {
			if err := ctx.Err(); err != nil {
				return err
			}
			deliver(frag)
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for _, frag := range frags {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			deliver(frag)
		}
	}
	return nil
}
