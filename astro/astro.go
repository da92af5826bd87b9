// Package astro provides astronomical units, epochs and time conversions
// shared by the coordinate and frame packages.
package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the standard epoch as a TDB Julian date.
const J2000 = 2451545.0

// J2000Obliquity is the obliquity of the ecliptic at the J2000 epoch
// in radians (23.4392911 degrees).
const J2000Obliquity = 23.4392911 * math.Pi / 180

// KmPerLy is the number of kilometers in one light year.
const KmPerLy = 9.4607304725808e12

// KmPerAU is the number of kilometers in one astronomical unit.
const KmPerAU = 1.495978707e8

// Universal coordinates use micro-light-years internally; the odd unit is
// inherited from the 64.64 fixed point layout, which gives sub-millimeter
// resolution over a span of thousands of light years.
const kmPerMicroLy = KmPerLy * 1.0e-6

// KmToMicroLy converts kilometers to micro-light-years.
func KmToMicroLy(km float64) float64 {
	return km / kmPerMicroLy
}

// MicroLyToKm converts micro-light-years to kilometers.
func MicroLyToKm(uly float64) float64 {
	return uly * kmPerMicroLy
}

// KmToLy converts kilometers to light years.
func KmToLy(km float64) float64 {
	return km / KmPerLy
}

// LyToKm converts light years to kilometers.
func LyToKm(ly float64) float64 {
	return ly * KmPerLy
}

// KmToAU converts kilometers to astronomical units.
func KmToAU(km float64) float64 {
	return km / KmPerAU
}

// AUToKm converts astronomical units to kilometers.
func AUToKm(au float64) float64 {
	return au * KmPerAU
}

// TimeToJD converts a civil time to a Julian date.
func TimeToJD(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JDToTime converts a Julian date to civil (UTC) time.
func JDToTime(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// SecondsPerDay is the length of a Julian day in seconds.
const SecondsPerDay = 86400.0

// DaysToSeconds converts an interval in Julian days to seconds.
func DaysToSeconds(d float64) float64 {
	return d * SecondsPerDay
}

// SecondsToDays converts an interval in seconds to Julian days.
func SecondsToDays(s float64) float64 {
	return s / SecondsPerDay
}
