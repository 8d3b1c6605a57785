package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cdb/internal/ui/style"
)

func TestVerdict(t *testing.T) {
	assert.Contains(t, style.Verdict("compile", true), style.Check+" compile")
	assert.Contains(t, style.Verdict("link", false), style.Cross+" link")
}

func TestField(t *testing.T) {
	got := style.Field("file", "main.c")
	assert.Contains(t, got, "file:")
	assert.Contains(t, got, "main.c")
}
