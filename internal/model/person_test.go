package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoUser(t *testing.T) {
	p := DemoUser()

	assert.Equal(t, "Henry", p.FirstName)
	assert.Equal(t, "Xiloj", p.LastName)
	assert.True(t, p.Valid())
}

func TestPersonJSON(t *testing.T) {
	b, err := json.Marshal(DemoUser())
	require.NoError(t, err)

	assert.JSONEq(t, `{"firstName":"Henry","lastName":"Xiloj"}`, string(b))
}

func TestPersonValid(t *testing.T) {
	assert.False(t, NewPerson("", "Xiloj").Valid())
	assert.False(t, NewPerson("Henry", "").Valid())
	assert.False(t, Person{}.Valid())
}

func TestDemoUserIsACopy(t *testing.T) {
	p := DemoUser()
	p.FirstName = "changed"

	assert.Equal(t, "Henry", DemoUser().FirstName)
}
