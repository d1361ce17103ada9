package animal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const foxJSON = `[
  {
    "name": "Fox",
    "taxonomy": {"kingdom": "Animalia", "family": "Canidae"},
    "locations": ["Africa", "Asia", "Europe"],
    "characteristics": {
      "diet": "Omnivore",
      "skin_type": "Fur",
      "prey": "Rabbits, rodents",
      "litter_size": 5
    }
  },
  {
    "name": "Arctic Fox",
    "characteristics": {}
  }
]`

func TestDecode(t *testing.T) {
	records, err := Decode([]byte(foxJSON))
	require.NoError(t, err)
	require.Len(t, records, 2)

	fox := records[0]
	assert.Equal(t, "Fox", fox.Name)
	assert.Equal(t, []string{"Africa", "Asia", "Europe"}, fox.Locations)
	assert.Equal(t, "Canidae", fox.Taxonomy["family"])

	require.NotNil(t, fox.Characteristics.Diet)
	assert.Equal(t, "Omnivore", *fox.Characteristics.Diet)
	require.NotNil(t, fox.Characteristics.SkinType)
	assert.Equal(t, "Fur", *fox.Characteristics.SkinType)
	assert.Nil(t, fox.Characteristics.Type)
	assert.Nil(t, fox.Characteristics.Slogan)

	assert.Equal(t, map[string]string{
		"prey":        "Rabbits, rodents",
		"litter_size": "5",
	}, fox.Characteristics.Extra)

	arctic := records[1]
	assert.Nil(t, arctic.Characteristics.Diet)
	assert.Empty(t, arctic.Characteristics.Extra)
	_, ok := arctic.FirstLocation()
	assert.False(t, ok)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte(`{"name": "not an array"}`))
	require.Error(t, err)
}

func TestCharacteristicsGet(t *testing.T) {
	diet := "Carnivore"
	c := Characteristics{
		Diet:  &diet,
		Extra: map[string]string{"habitat": "Forest"},
	}

	v, ok := c.Get(KeyDiet)
	assert.True(t, ok)
	assert.Equal(t, "Carnivore", v)

	v, ok = c.Get("habitat")
	assert.True(t, ok)
	assert.Equal(t, "Forest", v)

	_, ok = c.Get(KeyLifespan)
	assert.False(t, ok)

	_, ok = c.Get("color")
	assert.False(t, ok)
}

func TestCharacteristicsMarshalRoundTrip(t *testing.T) {
	records, err := Decode([]byte(foxJSON))
	require.NoError(t, err)

	data, err := json.Marshal(records[0].Characteristics)
	require.NoError(t, err)

	var back Characteristics
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, records[0].Characteristics, back)
}

func TestFirstLocation(t *testing.T) {
	r := Record{Name: "Wolf", Locations: []string{"North-America", "Europe"}}
	loc, ok := r.FirstLocation()
	assert.True(t, ok)
	assert.Equal(t, "North-America", loc)
}
