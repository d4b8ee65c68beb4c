package style

import (
	"strconv"

	"github.com/octoberswimmer/formic"
)

type Size string

func Px(pixels int) Size {
	return Size(strconv.Itoa(pixels) + "px")
}

func Em(em float64) Size {
	return Size(strconv.FormatFloat(em, 'f', -1, 64) + "em")
}

func Pct(percent int) Size {
	return Size(strconv.Itoa(percent) + "%")
}

func Color(value string) formic.Applyer {
	return formic.Style("color", value)
}

func Width(size Size) formic.Applyer {
	return formic.Style("width", string(size))
}

func MinWidth(size Size) formic.Applyer {
	return formic.Style("min-width", string(size))
}

func MaxWidth(size Size) formic.Applyer {
	return formic.Style("max-width", string(size))
}

func Height(size Size) formic.Applyer {
	return formic.Style("height", string(size))
}

func MinHeight(size Size) formic.Applyer {
	return formic.Style("min-height", string(size))
}

func MaxHeight(size Size) formic.Applyer {
	return formic.Style("max-height", string(size))
}

func Margin(size Size) formic.Applyer {
	return formic.Style("margin", string(size))
}

func Display(value string) formic.Applyer {
	return formic.Style("display", value)
}

func TextAlign(value string) formic.Applyer {
	return formic.Style("text-align", value)
}

func Position(pos string) formic.Applyer {
	return formic.Style("position", pos)
}

func Bottom(size Size) formic.Applyer {
	return formic.Style("bottom", string(size))
}

func Top(size Size) formic.Applyer {
	return formic.Style("top", string(size))
}

func Left(size Size) formic.Applyer {
	return formic.Style("left", string(size))
}

func Right(size Size) formic.Applyer {
	return formic.Style("right", string(size))
}

type OverflowOption string

const (
	OverflowVisible OverflowOption = "visible"
	OverflowHidden  OverflowOption = "hidden"
	OverflowScroll  OverflowOption = "scroll"
	OverflowAuto    OverflowOption = "auto"
)

func Overflow(option OverflowOption) formic.Applyer {
	return formic.Style("overflow", string(option))
}

func OverflowX(option OverflowOption) formic.Applyer {
	return formic.Style("overflow-x", string(option))
}

func OverflowY(option OverflowOption) formic.Applyer {
	return formic.Style("overflow-y", string(option))
}
