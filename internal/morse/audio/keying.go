// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     audio
// Description: Keying schedule for encoded text (PARIS timing, Farnsworth)
// Author:      Mike Stoffels
// Created:     2025-12-15
// License:     MIT
// ============================================================================

package audio

import (
	"strings"
	"time"
)

const (
	dotUnits       = 1
	dashUnits      = 3
	elementGap     = 1
	letterGapUnits = 3
	wordGapUnits   = 7
)

// Timing describes keying speed in words per minute. FarnsworthWPM, when
// set below WPM, stretches only the gaps between letters and words.
type Timing struct {
	WPM           int
	FarnsworthWPM int
}

// Unit is the length of one dot
func (t Timing) Unit() time.Duration {
	if t.WPM <= 0 {
		return 0
	}
	return 1200 * time.Millisecond / time.Duration(t.WPM)
}

// gaps returns the letter and word gap lengths
func (t Timing) gaps() (letter, word time.Duration) {
	unit := t.Unit()
	if t.FarnsworthWPM <= 0 || t.FarnsworthWPM >= t.WPM {
		return letterGapUnits * unit, wordGapUnits * unit
	}

	// ARRL Farnsworth: the 19 gap units of PARIS absorb the extra time
	c, s := float64(t.WPM), float64(t.FarnsworthWPM)
	total := (60*c - 37.2*s) / (s * c)
	gapUnit := time.Duration(total / 19 * float64(time.Second))
	return letterGapUnits * gapUnit, wordGapUnits * gapUnit
}

// Element is one key-down or key-up period
type Element struct {
	On       bool
	Duration time.Duration
}

// Schedule converts encoded text (codes separated by one space, words by
// two) into alternating tone and silence elements. Characters other than
// dots and dashes are ignored. There is no leading or trailing silence.
func Schedule(code string, timing Timing) []Element {
	unit := timing.Unit()
	if unit == 0 {
		return nil
	}
	letterGap, wordGap := timing.gaps()

	var elements []Element
	var pending time.Duration

	gap := func(d time.Duration) {
		if d > pending {
			pending = d
		}
	}
	tone := func(units int) {
		if len(elements) > 0 && pending > 0 {
			elements = append(elements, Element{On: false, Duration: pending})
		}
		pending = 0
		elements = append(elements, Element{On: true, Duration: time.Duration(units) * unit})
	}

	for _, word := range strings.Split(code, "  ") {
		gap(wordGap)
		for _, letter := range strings.Fields(word) {
			gap(letterGap)
			for _, r := range letter {
				switch r {
				case '.':
					gap(elementGap * unit)
					tone(dotUnits)
				case '-':
					gap(elementGap * unit)
					tone(dashUnits)
				}
			}
		}
	}

	return elements
}

// Total returns the summed duration of elements
func Total(elements []Element) time.Duration {
	var total time.Duration
	for _, e := range elements {
		total += e.Duration
	}
	return total
}
