package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestValidateFields_EmptyFieldsReportedInOrder(t *testing.T) {
	res := ValidateFields(ptr(""), ptr(""), ptr(""))
	assert.False(t, res.Valid)
	assert.Equal(t, "Title is empty", res.Message)

	res = ValidateFields(ptr("T"), ptr(""), ptr(""))
	assert.False(t, res.Valid)
	assert.Equal(t, "Author is empty", res.Message)

	res = ValidateFields(ptr("T"), ptr("A"), ptr(""))
	assert.False(t, res.Valid)
	assert.Equal(t, "Content is empty", res.Message)
}

func TestValidateFields_NilCountsAsEmpty(t *testing.T) {
	res := ValidateFields(nil, ptr("A"), ptr("C"))
	assert.False(t, res.Valid)
	assert.Equal(t, "Title is empty", res.Message)

	res = ValidateFields(ptr("T"), nil, ptr("C"))
	assert.Equal(t, "Author is empty", res.Message)

	res = ValidateFields(ptr("T"), ptr("A"), nil)
	assert.Equal(t, "Content is empty", res.Message)
}

func TestValidateFields_ContentLengthBoundary(t *testing.T) {
	exact := strings.Repeat("A", ContentMaxLength)
	res := ValidateFields(ptr("T"), ptr("A"), ptr(exact))
	assert.True(t, res.Valid)

	over := strings.Repeat("A", ContentMaxLength+1)
	res = ValidateFields(ptr("T"), ptr("A"), ptr(over))
	assert.False(t, res.Valid)
	assert.Equal(t, "Content exceed the max length of 1024 chars", res.Message)
}

func TestValidateFields_Valid(t *testing.T) {
	res := ValidateFields(ptr("T"), ptr("A"), ptr("C"))
	assert.True(t, res.Valid)
	assert.Empty(t, res.Message)
}

func TestValidateFieldsIfSet_NilMeansSkip(t *testing.T) {
	res := ValidateFieldsIfSet(nil, nil, nil)
	assert.True(t, res.Valid)

	res = ValidateFieldsIfSet(ptr("T"), nil, nil)
	assert.True(t, res.Valid)
}

func TestValidateFieldsIfSet_EmptyStringIsRejected(t *testing.T) {
	res := ValidateFieldsIfSet(ptr(""), nil, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, "Title is empty", res.Message)

	res = ValidateFieldsIfSet(nil, ptr(""), nil)
	assert.Equal(t, "Author is empty", res.Message)

	res = ValidateFieldsIfSet(nil, nil, ptr(""))
	assert.Equal(t, "Content is empty", res.Message)
}

func TestValidateFieldsIfSet_ContentLengthAppliesOnlyWhenSet(t *testing.T) {
	over := strings.Repeat("A", ContentMaxLength+1)
	res := ValidateFieldsIfSet(nil, nil, ptr(over))
	assert.False(t, res.Valid)
	assert.Equal(t, "Content exceed the max length of 1024 chars", res.Message)

	res = ValidateFieldsIfSet(ptr("T"), ptr("A"), nil)
	assert.True(t, res.Valid)
}
