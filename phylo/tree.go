package phylo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// splitSep joins taxa inside a canonical split identifier.
const splitSep = "\x1f"

// reservedChars delimit taxa and digest fields and may not appear in names.
const reservedChars = splitSep + "\x00"

// Split is one branch of a tree, described by the taxa on one side of it.
// A single-taxon side is a terminal branch.
type Split struct {
	Taxa   []string
	Length float64
}

type split struct {
	size   int
	length float64
}

// Tree is an unrooted topology over a fixed set of taxa. Tree values are
// immutable; two trees built from the same taxa, splits and branch lengths
// share the same Key.
type Tree struct {
	taxa   []string
	splits map[string]split
	key    string
}

// New builds a tree from its taxa and splits. Each split side is normalized to
// the side that does not contain the lexicographically first taxon, so either
// side may be given.
func New(taxa []string, splits []Split) (*Tree, error) {
	if len(taxa) == 0 {
		return nil, fmt.Errorf("%w: no taxa", ErrInvalidTree)
	}
	sorted := append([]string(nil), taxa...)
	sort.Strings(sorted)
	index := make(map[string]struct{}, len(sorted))
	for _, name := range sorted {
		if name == "" {
			return nil, fmt.Errorf("%w: empty taxon name", ErrInvalidTree)
		}
		if strings.ContainsAny(name, reservedChars) {
			return nil, fmt.Errorf("%w: taxon %q contains a control separator", ErrInvalidTree, name)
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: duplicate taxon %q", ErrInvalidTree, name)
		}
		index[name] = struct{}{}
	}

	t := &Tree{taxa: sorted, splits: make(map[string]split, len(splits))}
	for _, s := range splits {
		id, size, err := canonicalSplit(sorted, index, s.Taxa)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(s.Length) || math.IsInf(s.Length, 0) || s.Length < 0 {
			return nil, fmt.Errorf("%w: branch length %v", ErrInvalidTree, s.Length)
		}
		if _, ok := t.splits[id]; ok {
			return nil, fmt.Errorf("%w: duplicate split {%s}", ErrInvalidTree, strings.Join(s.Taxa, ","))
		}
		t.splits[id] = split{size: size, length: s.Length}
	}
	t.key = t.digest()
	return t, nil
}

func canonicalSplit(taxa []string, index map[string]struct{}, side []string) (string, int, error) {
	in := make(map[string]struct{}, len(side))
	for _, name := range side {
		if _, ok := index[name]; !ok {
			return "", 0, fmt.Errorf("%w: unknown taxon %q", ErrInvalidTree, name)
		}
		in[name] = struct{}{}
	}
	if len(in) == 0 || len(in) == len(taxa) {
		return "", 0, fmt.Errorf("%w: split must leave taxa on both sides", ErrInvalidTree)
	}
	_, flip := in[taxa[0]]
	var members []string
	for _, name := range taxa {
		if _, ok := in[name]; ok != flip {
			members = append(members, name)
		}
	}
	return strings.Join(members, splitSep), len(members), nil
}

func (t *Tree) digest() string {
	h := sha256.New()
	writeString(h, strconv.Itoa(len(t.taxa)))
	for _, name := range t.taxa {
		writeString(h, name)
	}
	for _, id := range t.splitIDs() {
		writeString(h, id)
		writeString(h, strconv.FormatFloat(t.splits[id].length, 'g', -1, 64))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Key returns the content digest identifying the tree.
func (t *Tree) Key() string { return t.key }

// Taxa returns the sorted taxon names.
func (t *Tree) Taxa() []string { return append([]string(nil), t.taxa...) }

// Splits returns the normalized splits in a stable order.
func (t *Tree) Splits() []Split {
	ids := t.splitIDs()
	out := make([]Split, 0, len(ids))
	for _, id := range ids {
		out = append(out, Split{Taxa: strings.Split(id, splitSep), Length: t.splits[id].length})
	}
	return out
}

// NonTrivial returns the number of splits separating at least two taxa on
// each side.
func (t *Tree) NonTrivial() int {
	n := 0
	for _, s := range t.splits {
		if !t.trivial(s) {
			n++
		}
	}
	return n
}

// TreeLength returns the sum of all branch lengths.
func (t *Tree) TreeLength() float64 {
	var sum float64
	for _, s := range t.splits {
		sum += s.length
	}
	return sum
}

func (t *Tree) trivial(s split) bool {
	return s.size <= 1 || s.size >= len(t.taxa)-1
}

func (t *Tree) splitIDs() []string {
	ids := make([]string, 0, len(t.splits))
	for id := range t.splits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func writeString(w io.Writer, s string) {
	// NUL delimiter keeps adjacent fields from colliding
	_, _ = w.Write([]byte(s + "\x00"))
}
