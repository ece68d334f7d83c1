package query

import (
	"fmt"
	"strings"

	"github.com/edudata/scorecard/pkg"
)

// Two-digit CIP prefix -> major category name.
var cip_names = pkg.Map[string, string]{
	"01": "Agriculture",
	"03": "Natural Resources",
	"04": "Architecture",
	"05": "Area Studies",
	"09": "Communication",
	"10": "Communications Technology",
	"11": "Computer Science",
	"12": "Culinary Services",
	"13": "Education",
	"14": "Engineering",
	"15": "Engineering Technology",
	"16": "Foreign Languages",
	"19": "Family Sciences",
	"22": "Legal Studies",
	"23": "English",
	"24": "Liberal Arts",
	"25": "Library Science",
	"26": "Biological Sciences",
	"27": "Mathematics",
	"29": "Military Technologies",
	"30": "Interdisciplinary Studies",
	"31": "Parks and Recreation",
	"38": "Philosophy",
	"39": "Theology",
	"40": "Physical Sciences",
	"41": "Science Technologies",
	"42": "Psychology",
	"43": "Security Studies",
	"44": "Public Administration",
	"45": "Social Sciences",
	"46": "Construction Trades",
	"47": "Mechanic Technologies",
	"48": "Precision Production",
	"49": "Transportation",
	"50": "Visual and Performing Arts",
	"51": "Health Professions",
	"52": "Business",
	"54": "History",
}

// MajorName maps a CIP code cell to a category name.
// The lookup key is the integer part of the code, zero-padded
// to two characters. Unknown prefixes synthesize a label
// instead of failing.
func MajorName(cell any) string {
	code := ""
	switch cell := cell.(type) {
	case nil:
	case string:
		code = strings.TrimSpace(cell)
	default:
		code = fmt.Sprint(cell)
	}
	if code == "" {
		return "Unknown Major"
	}

	prefix, _, _ := strings.Cut(code, ".")
	if len(prefix) < 2 {
		prefix = strings.Repeat("0", 2-len(prefix)) + prefix
	}

	if cip_names.Has(prefix) {
		return cip_names.Get(prefix)
	}
	return "Major " + prefix
}
