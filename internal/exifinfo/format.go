package exifinfo

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/rwcarlsen/goexif/exif"
)

func stringTag(x *exif.Exif, name exif.FieldName) (string, error) {
	tag, err := x.Get(name)
	if err != nil {
		return "", err
	}
	return tag.StringVal()
}

func ratTag(x *exif.Exif, name exif.FieldName) (*big.Rat, error) {
	tag, err := x.Get(name)
	if err != nil {
		return nil, err
	}
	return tag.Rat(0)
}

func intTag(x *exif.Exif, name exif.FieldName) (int64, error) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, err
	}
	return tag.Int64(0)
}

// formatRat renders a rational as an integer when it is whole, and as
// the shortest decimal otherwise.
func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatExposureTime renders times under a second as a reduced
// fraction, and longer exposures as a plain value.
func FormatExposureTime(r *big.Rat) string {
	if r.Cmp(big.NewRat(1, 1)) < 0 {
		return r.RatString() + " sec"
	}
	return formatRat(r) + " sec"
}

// FormatEV renders an exposure bias as a signed whole-plus-fraction,
// omitting a zero whole part and a zero fraction. Exactly zero is
// rendered "+0".
func FormatEV(r *big.Rat) string {
	sign := "+"
	abs := new(big.Rat).Set(r)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	whole := new(big.Int).Quo(abs.Num(), abs.Denom())
	frac := new(big.Rat).Sub(abs, new(big.Rat).SetInt(whole))
	if frac.Num().Sign() != 0 {
		wholeStr := ""
		if whole.Sign() != 0 {
			wholeStr = whole.String()
		}
		return fmt.Sprintf("%s%s %s/%s", sign, wholeStr, frac.Num(), frac.Denom())
	}
	return sign + whole.String()
}

// FormatAperture renders an f-number, dropping a trailing ".0".
func FormatAperture(r *big.Rat) string {
	return strings.TrimSuffix("f/"+formatRat(r), ".0")
}

var unicodeMarker = []byte("UNICODE\x00")

// DecodeUserComment decodes the raw user-comment bytes. The first
// eight bytes declare the encoding; the UNICODE marker means UTF-16 in
// the container's byte order, anything else is treated as ASCII. Tools
// in the wild do not write a BOM, hence the reliance on the declared
// order.
func DecodeUserComment(raw []byte, order binary.ByteOrder) (string, error) {
	if len(raw) < 8 {
		return "", fmt.Errorf("user comment too short: %d bytes", len(raw))
	}
	data := raw[8:]
	if bytes.Equal(raw[:8], unicodeMarker) {
		if len(data)%2 != 0 {
			data = data[:len(data)-1]
		}
		units := make([]uint16, len(data)/2)
		for i := range units {
			units[i] = order.Uint16(data[2*i:])
		}
		return string(utf16.Decode(units)), nil
	}
	return strings.TrimRight(string(data), "\x00"), nil
}
