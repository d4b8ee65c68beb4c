package prop

import (
	"github.com/octoberswimmer/formic"
)

type InputType string

const (
	TypeButton        InputType = "button"
	TypeCheckbox      InputType = "checkbox"
	TypeColor         InputType = "color"
	TypeDate          InputType = "date"
	TypeDatetime      InputType = "datetime"
	TypeDatetimeLocal InputType = "datetime-local"
	TypeEmail         InputType = "email"
	TypeFile          InputType = "file"
	TypeHidden        InputType = "hidden"
	TypeImage         InputType = "image"
	TypeMonth         InputType = "month"
	TypeNumber        InputType = "number"
	TypePassword      InputType = "password"
	TypeRadio         InputType = "radio"
	TypeRange         InputType = "range"
	TypeReset         InputType = "reset"
	TypeSearch        InputType = "search"
	TypeSubmit        InputType = "submit"
	TypeTel           InputType = "tel"
	TypeText          InputType = "text"
	TypeTime          InputType = "time"
	TypeURL           InputType = "url"
	TypeWeek          InputType = "week"
)

func Autofocus(autofocus bool) formic.Applyer {
	return formic.Property("autofocus", autofocus)
}

func Disabled(disabled bool) formic.Applyer {
	return formic.Property("disabled", disabled)
}

func Checked(checked bool) formic.Applyer {
	return formic.Property("checked", checked)
}

func For(id string) formic.Applyer {
	return formic.Property("htmlFor", id)
}

func Href(url string) formic.Applyer {
	return formic.Property("href", url)
}

func ID(id string) formic.Applyer {
	return formic.Property("id", id)
}

func Placeholder(text string) formic.Applyer {
	return formic.Property("placeholder", text)
}

func Src(url string) formic.Applyer {
	return formic.Property("src", url)
}

func Type(t InputType) formic.Applyer {
	return formic.Property("type", string(t))
}

func Value(v string) formic.Applyer {
	return formic.Property("value", v)
}

func Name(name string) formic.Applyer {
	return formic.Property("name", name)
}

func Alt(text string) formic.Applyer {
	return formic.Property("alt", text)
}
