package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OreDict maps alias-group names to interchangeable item stacks. Names keeps the
// order the groups appeared in the source document.
type OreDict struct {
	Names  []string
	Groups map[string][]ItemStack
}

// NewOreDict returns an empty dictionary.
func NewOreDict() *OreDict {
	return &OreDict{Groups: make(map[string][]ItemStack)}
}

// Add appends stacks to a group, registering the name on first use.
func (o *OreDict) Add(name string, stacks ...ItemStack) {
	if o.Groups == nil {
		o.Groups = make(map[string][]ItemStack)
	}
	if _, ok := o.Groups[name]; !ok {
		o.Names = append(o.Names, name)
	}
	o.Groups[name] = append(o.Groups[name], stacks...)
}

// Len returns the number of alias groups.
func (o *OreDict) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Names)
}

func (o *OreDict) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("oreDict: expected object, got %v", tok)
	}

	*o = OreDict{Groups: make(map[string][]ItemStack)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("oreDict: unexpected key %v", tok)
		}
		var stacks []ItemStack
		if err := dec.Decode(&stacks); err != nil {
			return fmt.Errorf("oreDict %q: %w", name, err)
		}
		if _, seen := o.Groups[name]; !seen {
			o.Names = append(o.Names, name)
		}
		o.Groups[name] = stacks
	}
	_, err = dec.Token()
	return err
}

func (o OreDict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		stacks := o.Groups[name]
		if stacks == nil {
			stacks = []ItemStack{}
		}
		val, err := json.Marshal(stacks)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
