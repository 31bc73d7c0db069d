package model

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// ResolveReferences rewrites, in place, every inline [label](tag) reference
// into its plain text display form:
//
//	[](intro)         -> Section 1
//	[](RFC2119)       -> [1]
//	[TLS](RFC8446)    -> TLS [2]
//
// Any tag which is neither an anchor nor a cited reference aborts the whole
// pass. Rewritten text is NFC normalized so that width calculations see
// composed characters.
func (d *Document) ResolveReferences(anchors AnchorIndex, refs *ReferenceSet, log *zap.Logger) error {
	replace := func(text *string) error {
		src := *text
		var (
			out  strings.Builder
			last int
		)
		for _, m := range referencePattern.FindAllStringIndex(src, -1) {
			r, err := resolveReference(src[m[0]:m[1]], anchors, refs)
			if err != nil {
				return err
			}
			out.WriteString(src[last:m[0]])
			out.WriteString(r)
			// "[1]" directly followed by "(" would read as a new reference
			if strings.HasSuffix(r, "]") && strings.HasPrefix(src[m[1]:], "(") {
				out.WriteByte(' ')
			}
			last = m[1]
		}
		out.WriteString(src[last:])
		*text = norm.NFC.String(out.String())
		return nil
	}

	for _, part := range d.Parts() {
		for i := range part {
			if err := part[i].textFields(replace); err != nil {
				log.Debug("Unable to resolve reference", zap.String("block", string(part[i].Kind)), zap.Error(err))
				return err
			}
		}
	}
	return nil
}

func resolveReference(match string, anchors AnchorIndex, refs *ReferenceSet) (string, error) {
	m := referencePattern.FindStringSubmatch(match)
	label, tag := m[1], m[2]

	if name, ok := anchors[tag]; ok {
		return name, nil
	}
	if n, ok := refs.Map[tag]; ok {
		if len(label) > 0 {
			return label + " [" + strconv.Itoa(n) + "]", nil
		}
		return "[" + strconv.Itoa(n) + "]", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownReference, tag)
}
