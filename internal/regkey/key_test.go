package regkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "Storage", Join("Storage"))
	assert.Equal(t, "Storage.Great_Lake", Join("Storage", "Great_Lake"))
	assert.Equal(t, "Storage.Great_Lake.EOL", Join("Storage", "Great_Lake", "EOL"))

	// An empty component ends the key early.
	assert.Equal(t, "Storage", Join("Storage", "", "EOL"))
}

func TestNamespaceKeys(t *testing.T) {
	assert.Equal(t, "function.Storage_volume", Function("Storage_volume"))
	assert.Equal(t, "collection.storages", Collection("storages"))
	assert.Equal(t, "file.inflows", File("inflows"))
	assert.Equal(t, "Channel.mersey", Instance("Channel", "mersey"))
	assert.Equal(t, "Channel.mersey.Capacity", Member("Channel", "mersey", "Capacity"))
}

func TestIsValidName(t *testing.T) {
	valid := []string{"a", "Great_Lake", "x1", "Storage", "aB_9"}
	for _, name := range valid {
		assert.True(t, IsValidName(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "1abc", "_abc", "great lake", "a-b", "a.b", "naïve"}
	for _, name := range invalid {
		assert.False(t, IsValidName(name), "expected %q to be invalid", name)
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Great_Lake"))

	err := ValidateName("9lives")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "9lives")
}
