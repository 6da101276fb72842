package models

// AnyOption is the sentinel select value meaning "do not filter".
const AnyOption = "any"

type Filter struct {
	Century        string
	Classification string
	QueryString    string
}

func NewFilter() Filter {
	return Filter{
		Century:        AnyOption,
		Classification: AnyOption,
		QueryString:    "",
	}
}
