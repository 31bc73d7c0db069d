package model

import (
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// Index building functions - anchors and cited references.

// referencePattern matches inline references of the form [label](tag).
var referencePattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

// AnchorIndex maps anchor to its display label ("Section 3.2", "Figure 4").
type AnchorIndex map[string]string

// ReferenceSet lists references actually cited by the document text, with
// their display numbers. Normative references are numbered first.
type ReferenceSet struct {
	Normative   []string
	Informative []string
	Map         map[string]int
}

// Len returns total number of references in the set.
func (rs *ReferenceSet) Len() int {
	return len(rs.Normative) + len(rs.Informative)
}

// BuildAnchorIndex walks abstract, notes, middle and back matter and records
// every anchor of sections, figures and tables. Anchors are expected to be
// unique, when they are not the later one wins.
func (d *Document) BuildAnchorIndex(log *zap.Logger) AnchorIndex {
	index := make(AnchorIndex)
	for _, part := range d.Parts() {
		for i := range part {
			anchors, label := part[i].Anchors()
			for _, a := range anchors {
				if old, exists := index[a]; exists && old != label {
					log.Debug("Anchor redefined", zap.String("anchor", a), zap.String("was", old), zap.String("now", label))
				}
				index[a] = label
			}
		}
	}
	return index
}

// citedTags returns set of tags used by inline references anywhere in the
// document text.
func (d *Document) citedTags() map[string]struct{} {
	tags := make(map[string]struct{})
	collect := func(text *string) error {
		for _, m := range referencePattern.FindAllStringSubmatch(*text, -1) {
			tags[m[2]] = struct{}{}
		}
		return nil
	}
	for _, part := range d.Parts() {
		for i := range part {
			_ = part[i].textFields(collect)
		}
	}
	return tags
}

// BuildReferenceSet gathers cited tags and keeps those which are either
// declared in the front matter or recognizable as external references.
// Declared references which are never cited are dropped: the references
// section lists only what the body actually cites.
func (d *Document) BuildReferenceSet(log *zap.Logger) *ReferenceSet {
	set := &ReferenceSet{Map: make(map[string]int)}

	for tag := range d.citedTags() {
		switch {
		case d.Front.IsNormative(tag):
			set.Normative = append(set.Normative, tag)
		case d.Front.IsDeclared(tag), IsExternalReference(tag):
			set.Informative = append(set.Informative, tag)
		default:
			// either internal anchor or unresolvable, rewrite decides
			log.Debug("Cited tag is not a reference", zap.String("tag", tag))
		}
	}
	sort.Strings(set.Normative)
	sort.Strings(set.Informative)

	for i, tag := range set.Normative {
		set.Map[tag] = i + 1
	}
	for i, tag := range set.Informative {
		set.Map[tag] = len(set.Normative) + i + 1
	}

	for tag := range d.Front.Normative {
		if _, used := set.Map[tag]; !used {
			log.Debug("Dropping unused normative reference", zap.String("tag", tag))
		}
	}
	for tag := range d.Front.Informative {
		if _, used := set.Map[tag]; !used {
			log.Debug("Dropping unused informative reference", zap.String("tag", tag))
		}
	}
	return set
}
