package animal

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Characteristic keys the renderer knows how to display
const (
	KeyDiet     = "diet"
	KeyType     = "type"
	KeySkinType = "skin_type"
	KeyLifespan = "lifespan"
	KeyTopSpeed = "top_speed"
	KeySlogan   = "slogan"
)

// Record represents one animal as returned by the animals API
type Record struct {
	Name            string            `json:"name"`
	Taxonomy        map[string]string `json:"taxonomy,omitempty"`
	Locations       []string          `json:"locations,omitempty"`
	Characteristics Characteristics   `json:"characteristics"`
}

// Characteristics holds the optional attributes of a Record.
// A nil field means the API did not send that key.
type Characteristics struct {
	Diet     *string
	Type     *string
	SkinType *string
	Lifespan *string
	TopSpeed *string
	Slogan   *string

	// Every other key (prey, habitat, color, ...)
	Extra map[string]string
}

// Get returns the value of any characteristic, known or extra
func (c Characteristics) Get(key string) (string, bool) {
	if field := c.field(key); field != nil {
		if *field == nil {
			return "", false
		}
		return **field, true
	}
	v, ok := c.Extra[key]
	return v, ok
}

func (c *Characteristics) field(key string) **string {
	switch key {
	case KeyDiet:
		return &c.Diet
	case KeyType:
		return &c.Type
	case KeySkinType:
		return &c.SkinType
	case KeyLifespan:
		return &c.Lifespan
	case KeyTopSpeed:
		return &c.TopSpeed
	case KeySlogan:
		return &c.Slogan
	}
	return nil
}

// UnmarshalJSON splits the characteristics object into the known optional
// fields and Extra. Non-string values are stringified.
func (c *Characteristics) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding characteristics: %v", err)
	}

	*c = Characteristics{}
	for key, value := range raw {
		if value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}

		if field := c.field(key); field != nil {
			v := s
			*field = &v
			continue
		}
		if c.Extra == nil {
			c.Extra = make(map[string]string)
		}
		c.Extra[key] = s
	}
	return nil
}

// MarshalJSON writes the characteristics back as a flat object
func (c Characteristics) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(c.Extra)+6)
	for k, v := range c.Extra {
		out[k] = v
	}
	for _, key := range []string{KeyDiet, KeyType, KeySkinType, KeyLifespan, KeyTopSpeed, KeySlogan} {
		if v, ok := c.Get(key); ok {
			out[key] = v
		}
	}
	return json.Marshal(out)
}

// FirstLocation returns the first listed location, if any
func (r Record) FirstLocation() (string, bool) {
	if len(r.Locations) == 0 {
		return "", false
	}
	return r.Locations[0], true
}

// Decode parses a JSON array of records
func Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding animal records: %v", err)
	}
	return records, nil
}
