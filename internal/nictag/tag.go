package nictag

import "fmt"

// TypeNormal is the only tag type the parsers produce.
const TypeNormal = "normal"

// Optional holds an attribute value that may be absent.
type Optional struct {
	value string
	set   bool
}

// Some returns a present value, which may be empty.
func Some(value string) Optional {
	return Optional{value: value, set: true}
}

// None returns an absent value.
func None() Optional {
	return Optional{}
}

// String returns the value or "-" when it is absent.
func (o Optional) String() string {
	if !o.set {
		return "-"
	}
	return o.value
}

// IsZero makes yaml omitempty skip absent values.
func (o Optional) IsZero() bool {
	return !o.set
}

func (o Optional) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// Tag is a named network interface label.
type Tag struct {
	Name       string   `yaml:"-"`
	MacAddress Optional `yaml:"mac_address,omitempty"`
	Link       Optional `yaml:"link,omitempty"`
	Type       Optional `yaml:"type,omitempty"`
}

// New creates a tag with a MAC address, no link and the normal type.
func New(name, macAddress string) *Tag {
	return &Tag{
		Name:       name,
		MacAddress: Some(macAddress),
		Link:       None(),
		Type:       Some(TypeNormal),
	}
}

func (t *Tag) String() string {
	return fmt.Sprintf("<NicTag '%s'>", t.Name)
}

func (t *Tag) GoString() string {
	return fmt.Sprintf("<NicTag '%s': mac_address %s, link %s, type %s>",
		t.Name, t.MacAddress, t.Link, t.Type)
}
