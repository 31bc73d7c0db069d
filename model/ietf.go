package model

import (
	"fmt"
	"regexp"
	"strings"
)

// IETFLinkTemplate is the base of canonical lookup URIs for RFCs and
// Internet-Drafts.
const IETFLinkTemplate = "https://tools.ietf.org/html/"

var (
	rfcTag          = regexp.MustCompile(`^RFC\d{1,4}$`)
	draftTag        = regexp.MustCompile(`^I-D\.[\w-]+$`)
	httpTag         = regexp.MustCompile(`^https?://`)
	leadingInitials = regexp.MustCompile(`^[A-Z.]*\s+`)
)

// ExternalInfo describes reference which could be looked up outside of the
// document.
type ExternalInfo struct {
	Series string
	Value  string
	URI    string
}

func IsRFCReference(tag string) bool {
	return rfcTag.MatchString(tag)
}

func IsDraftReference(tag string) bool {
	return draftTag.MatchString(tag)
}

func IsIETFReference(tag string) bool {
	return IsRFCReference(tag) || IsDraftReference(tag)
}

func IsHTTPReference(tag string) bool {
	return httpTag.MatchString(tag)
}

// IsExternalReference reports whether tag is recognizable without being
// declared in the front matter.
func IsExternalReference(tag string) bool {
	return IsIETFReference(tag) || IsHTTPReference(tag)
}

// IETFReferenceInfo derives series, value and lookup URI from the tag text
// alone.
func IETFReferenceInfo(tag string) (ExternalInfo, error) {
	switch {
	case IsRFCReference(tag):
		number := strings.TrimPrefix(tag, "RFC")
		return ExternalInfo{
			Series: "RFC",
			Value:  number,
			URI:    IETFLinkTemplate + "rfc" + number,
		}, nil
	case IsDraftReference(tag):
		name := "draft-" + strings.TrimPrefix(tag, "I-D.")
		return ExternalInfo{
			Series: "Internet-Draft",
			Value:  name,
			URI:    IETFLinkTemplate + name,
		}, nil
	}
	return ExternalInfo{}, fmt.Errorf("%w: %q", ErrNotIETFReference, tag)
}

// Citation returns the short human readable name of the reference
// ("RFC 2119", "draft-ietf-foo-bar").
func (i ExternalInfo) Citation() string {
	if i.Series == "RFC" {
		return "RFC " + i.Value
	}
	return i.Value
}
