// Package notation parses and formats the text notation for cube rotations.
//
// A sequence is whitespace separated, one token per rotation (or rotation
// pair, for the double-turn modifier):
//
//	token  := [layer_prefix] face_char [wide_suffix] [modifier]
//	prefix := INTEGER | INTEGER "-" INTEGER   (1-based layer numbers)
//	face   := "F" | "R" | "U" | "L" | "B" | "D"
//	wide   := "w"
//	mod    := "'" | "2"
//
// Examples: "F", "R'", "U2", "3F", "Fw", "3Fw", "2-4R'".
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlecube/puzzlecube"
)

const (
	charAnticlockwise = '\''
	charTurnTwice     = '2'
	charWide          = 'w'
	charRangeSep      = '-'
)

// Sentinel errors describing why a token failed to parse. They appear as the
// cause inside a TokenError.
var (
	ErrUnknownFace          = errors.New("unknown face character")
	ErrBadLayerPrefix       = errors.New("malformed layer prefix")
	ErrBadRange             = errors.New("malformed layer range")
	ErrWideRange            = errors.New("layer range cannot be combined with wide suffix")
	ErrConflictingModifiers = errors.New("anticlockwise and double-turn modifiers cannot be combined")
	ErrTrailingText         = errors.New("unexpected trailing text")
)

// TokenError reports a token that could not be parsed, wrapping the
// character-level cause.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("notation: invalid token %q: %v", e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// ParseSequence tokenizes a whitespace-separated move string into rotations.
// A token with the double-turn modifier contributes its rotation twice.
func ParseSequence(text string) ([]puzzlecube.Rotation, error) {
	var rotations []puzzlecube.Rotation
	for _, token := range strings.Fields(text) {
		parsed, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		rotations = append(rotations, parsed...)
	}
	return rotations, nil
}

// PerformSequence parses text and applies the resulting rotations to cube in
// order. Application stops at the first failing rotation; rotations already
// applied remain applied.
func PerformSequence(text string, cube *puzzlecube.Cube) error {
	rotations, err := ParseSequence(text)
	if err != nil {
		return err
	}
	return cube.RotateSeq(rotations...)
}

// FormatSequence formats rotations as a space-separated string of canonical
// notation tokens.
func FormatSequence(rotations []puzzlecube.Rotation) string {
	tokens := make([]string, len(rotations))
	for i, r := range rotations {
		tokens[i] = r.Notation()
	}
	return strings.Join(tokens, " ")
}

func parseToken(token string) ([]puzzlecube.Rotation, error) {
	rest := token

	startNum, endNum, isRange, err := splitLayerPrefix(&rest)
	if err != nil {
		return nil, &TokenError{Token: token, Err: err}
	}

	face, err := parseFaceChar(&rest)
	if err != nil {
		return nil, &TokenError{Token: token, Err: err}
	}

	wide := strings.HasPrefix(rest, string(charWide))
	if wide {
		rest = rest[1:]
	}

	anticlockwise, twice, err := parseModifier(rest)
	if err != nil {
		return nil, &TokenError{Token: token, Err: err}
	}

	rotation, err := buildRotation(face, startNum, endNum, isRange, wide, anticlockwise)
	if err != nil {
		return nil, &TokenError{Token: token, Err: err}
	}

	if twice {
		return []puzzlecube.Rotation{rotation, rotation}, nil
	}
	return []puzzlecube.Rotation{rotation}, nil
}

// splitLayerPrefix consumes an optional "n" or "a-b" prefix from *rest and
// returns the 1-based layer numbers. start is 0 when no prefix is present.
func splitLayerPrefix(rest *string) (start, end int, isRange bool, err error) {
	digits := leadingDigits(*rest)
	if digits == "" {
		return 0, 0, false, nil
	}
	start, err = strconv.Atoi(digits)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrBadLayerPrefix, digits)
	}
	if start < 1 {
		return 0, 0, false, fmt.Errorf("%w: layer numbers are 1-based, got %d", ErrBadLayerPrefix, start)
	}
	*rest = (*rest)[len(digits):]

	if !strings.HasPrefix(*rest, string(charRangeSep)) {
		return start, 0, false, nil
	}
	*rest = (*rest)[1:]

	endDigits := leadingDigits(*rest)
	if endDigits == "" {
		return 0, 0, false, fmt.Errorf("%w: missing upper bound after %q", ErrBadRange, fmt.Sprintf("%d-", start))
	}
	end, err = strconv.Atoi(endDigits)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrBadRange, endDigits)
	}
	if end < start {
		return 0, 0, false, fmt.Errorf("%w: %d-%d is reversed", ErrBadRange, start, end)
	}
	*rest = (*rest)[len(endDigits):]
	return start, end, true, nil
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

func parseFaceChar(rest *string) (puzzlecube.Face, error) {
	if len(*rest) == 0 {
		return 0, fmt.Errorf("%w: missing face character", ErrUnknownFace)
	}
	var face puzzlecube.Face
	switch (*rest)[0] {
	case 'F':
		face = puzzlecube.Front
	case 'R':
		face = puzzlecube.Right
	case 'U':
		face = puzzlecube.Up
	case 'L':
		face = puzzlecube.Left
	case 'B':
		face = puzzlecube.Back
	case 'D':
		face = puzzlecube.Down
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFace, rune((*rest)[0]))
	}
	*rest = (*rest)[1:]
	return face, nil
}

func parseModifier(rest string) (anticlockwise, twice bool, err error) {
	switch rest {
	case "":
		return false, false, nil
	case string(charAnticlockwise):
		return true, false, nil
	case string(charTurnTwice):
		return false, true, nil
	case string(charAnticlockwise) + string(charTurnTwice),
		string(charTurnTwice) + string(charAnticlockwise):
		return false, false, ErrConflictingModifiers
	default:
		return false, false, fmt.Errorf("%w: %q", ErrTrailingText, rest)
	}
}

func buildRotation(face puzzlecube.Face, start, end int, isRange, wide, anticlockwise bool) (puzzlecube.Rotation, error) {
	direction := puzzlecube.Clockwise
	if anticlockwise {
		direction = puzzlecube.Anticlockwise
	}

	switch {
	case isRange:
		if wide {
			return puzzlecube.Rotation{}, ErrWideRange
		}
		r := puzzlecube.ClockwiseMultiSetback(face, start-1, end-1)
		r.Direction = direction
		return r, nil
	case wide:
		// A bare "w" is the standard two-layer wide turn.
		layer := 1
		if start > 0 {
			layer = start - 1
		}
		if layer == 0 {
			// A one-layer wide turn is just the face itself.
			return puzzlecube.Rotation{RelativeTo: face, Direction: direction}, nil
		}
		r := puzzlecube.ClockwiseMultilayer(face, layer)
		r.Direction = direction
		return r, nil
	case start > 1:
		r := puzzlecube.ClockwiseSetback(face, start-1)
		r.Direction = direction
		return r, nil
	default:
		// No prefix, or the degenerate "1" prefix naming the face layer.
		return puzzlecube.Rotation{RelativeTo: face, Direction: direction}, nil
	}
}
