// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/UNO-SOFT/sheetexport"
)

type cellKind uint8

const (
	absentCell cellKind = iota
	textCell
	numberCell
)

// cell is a normalized cell value: the (unescaped) text, or the formatted number.
type cell struct {
	Value string
	Kind  cellKind
}

// newCell normalizes v into an absent, a text or a number cell.
func newCell(v any) cell {
	if v == nil {
		return cell{}
	}
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			if vv == nil {
				return cell{}
			}
			v = vv
		}
	}
	switch x := v.(type) {
	case cell:
		return x
	case string:
		return textCellOf(x)
	case []byte:
		return textCellOf(string(x))
	case sheetexport.Number:
		return numberCellOf(string(x))
	case json.Number:
		return numberCellOf(string(x))
	case int:
		return cell{Kind: numberCell, Value: strconv.Itoa(x)}
	case int8:
		return cell{Kind: numberCell, Value: strconv.FormatInt(int64(x), 10)}
	case int16:
		return cell{Kind: numberCell, Value: strconv.FormatInt(int64(x), 10)}
	case int32:
		return cell{Kind: numberCell, Value: strconv.FormatInt(int64(x), 10)}
	case int64:
		return cell{Kind: numberCell, Value: strconv.FormatInt(x, 10)}
	case uint:
		return cell{Kind: numberCell, Value: strconv.FormatUint(uint64(x), 10)}
	case uint8:
		return cell{Kind: numberCell, Value: strconv.FormatUint(uint64(x), 10)}
	case uint16:
		return cell{Kind: numberCell, Value: strconv.FormatUint(uint64(x), 10)}
	case uint32:
		return cell{Kind: numberCell, Value: strconv.FormatUint(uint64(x), 10)}
	case uint64:
		return cell{Kind: numberCell, Value: strconv.FormatUint(x, 10)}
	case float32:
		return floatCellOf(float64(x), 32)
	case float64:
		return floatCellOf(x, 64)
	case bool:
		return cell{Kind: textCell, Value: strconv.FormatBool(x)}
	case time.Time:
		if x.IsZero() {
			return cell{}
		}
		return cell{Kind: textCell, Value: x.Format("2006-01-02")}
	case fmt.Stringer:
		return textCellOf(x.String())
	}
	return textCellOf(fmt.Sprint(v))
}

func textCellOf(s string) cell {
	if s == "" {
		return cell{}
	}
	return cell{Kind: textCell, Value: s}
}

// numberCellOf returns a number cell if s parses as a finite float, a text cell otherwise.
func numberCellOf(s string) cell {
	t := strings.TrimSpace(s)
	if t == "" {
		return cell{}
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) &&
		!strings.ContainsAny(t, "xXpP_") {
		return cell{Kind: numberCell, Value: formatFloat(f, 64)}
	}
	return cell{Kind: textCell, Value: s}
}

// floatCellOf returns a number cell for finite values,
// and a text cell ("NaN", "Infinity", "-Infinity") for the others.
func floatCellOf(f float64, bitSize int) cell {
	switch {
	case math.IsNaN(f):
		return cell{Kind: textCell, Value: "NaN"}
	case math.IsInf(f, 1):
		return cell{Kind: textCell, Value: "Infinity"}
	case math.IsInf(f, -1):
		return cell{Kind: textCell, Value: "-Infinity"}
	}
	return cell{Kind: numberCell, Value: formatFloat(f, bitSize)}
}

// formatFloat formats f in the shortest form that parses back to f:
// in decimal notation, in exponent notation under 1e-6 and from 1e21.
func formatFloat(f float64, bitSize int) string {
	if f == 0 {
		return "0"
	}
	if a := math.Abs(f); a < 1e-6 || a >= 1e21 {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
