// Package exifinfo extracts camera metadata from an image and formats
// it into the human-readable labels shown on the overlay. Extraction
// must never take the display pipeline down: a tag that cannot be read
// or formatted is simply omitted.
package exifinfo

import (
	"io"
	"strconv"

	"github.com/rwcarlsen/goexif/exif"
)

// OverlayOrder is the display order for the label/value block. Model,
// Lens and User Comment are handled separately by the overlay builder.
var OverlayOrder = []string{
	"Exposure Time",
	"EV",
	"Metering Mode",
	"Focal Length",
	"Aperture",
	"Program",
	"ISO",
	"Exposure Mode",
}

var meteringModes = map[int64]string{
	0:   "Unknown",
	1:   "Average",
	2:   "CenterWeightedAverage",
	3:   "Spot",
	4:   "MultiSpot",
	5:   "Pattern",
	6:   "Partial",
	255: "Other",
}

var exposurePrograms = map[int64]string{
	0: "Not defined",
	1: "Manual",
	2: "Normal",
	3: "Aperture",
	4: "Shutter",
	5: "Creative",
	6: "Action",
	7: "Portrait",
	8: "Landscape",
}

var exposureModes = map[int64]string{
	0: "Auto",
	1: "Manual",
	2: "Auto bracket",
}

// Extract reads the embedded metadata from r and returns the formatted
// label/value map. Images without usable metadata yield an empty map.
func Extract(r io.Reader) map[string]string {
	result := make(map[string]string)
	x, err := exif.Decode(r)
	if err != nil {
		return result
	}

	if v, err := stringTag(x, exif.Model); err == nil {
		result["Model"] = v
	}
	if v, err := stringTag(x, exif.LensModel); err == nil {
		result["Lens"] = v
	}
	if rat, err := ratTag(x, exif.ExposureTime); err == nil {
		result["Exposure Time"] = FormatExposureTime(rat)
	}
	if rat, err := ratTag(x, exif.ExposureBiasValue); err == nil {
		result["EV"] = FormatEV(rat)
	}
	if rat, err := ratTag(x, exif.FocalLength); err == nil {
		result["Focal Length"] = formatRat(rat) + "mm"
	}
	if rat, err := ratTag(x, exif.FNumber); err == nil {
		result["Aperture"] = FormatAperture(rat)
	}
	if n, err := intTag(x, exif.ISOSpeedRatings); err == nil {
		result["ISO"] = strconv.FormatInt(n, 10)
	}
	if n, err := intTag(x, exif.MeteringMode); err == nil {
		result["Metering Mode"] = enumValue(meteringModes, n)
	}
	if n, err := intTag(x, exif.ExposureProgram); err == nil {
		result["Program"] = enumValue(exposurePrograms, n)
	}
	if n, err := intTag(x, exif.ExposureMode); err == nil {
		result["Exposure Mode"] = enumValue(exposureModes, n)
	}
	if tag, err := x.Get(exif.UserComment); err == nil && tag != nil {
		if comment, err := DecodeUserComment(tag.Val, x.Tiff.Order); err == nil && comment != "" {
			result["User Comment"] = comment
		}
	}
	return result
}

func enumValue(table map[int64]string, code int64) string {
	if v, ok := table[code]; ok {
		return v
	}
	return "Undefined"
}
