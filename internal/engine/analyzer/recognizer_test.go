package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/engine/analyzer"
)

func TestRecognizer_IsCompiler(t *testing.T) {
	r, err := analyzer.NewRecognizer()
	require.NoError(t, err)

	tests := []struct {
		program string
		want    bool
	}{
		{program: "cc", want: true},
		{program: "c++", want: true},
		{program: "/usr/bin/cc", want: true},
		{program: "gcc", want: true},
		{program: "g++", want: true},
		{program: "gcc-4.8", want: true},
		{program: "gcc-13", want: true},
		{program: "x86_64-linux-gnu-gcc", want: true},
		{program: "/opt/cross/bin/arm-none-eabi-g++", want: true},
		{program: "clang", want: true},
		{program: "clang++", want: true},
		{program: "clang-3.4", want: true},
		{program: "clang-17", want: true},
		{program: "llvm-gcc", want: true},
		{program: "llvm-g++", want: true},
		{program: "ld", want: false},
		{program: "make", want: false},
		{program: "gcc-ar", want: false},
		{program: "clang-format", want: false},
		{program: "ccache", want: false},
		{program: "/usr/bin/cc1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsCompiler(tt.program))
			// Second lookup is served from the memo and must agree.
			assert.Equal(t, tt.want, r.IsCompiler(tt.program))
		})
	}
}

func TestRecognizer_ExtraPatterns(t *testing.T) {
	r, err := analyzer.NewRecognizer(`^my-cc$`, `^icx$`)
	require.NoError(t, err)

	assert.True(t, r.IsCompiler("/tools/bin/my-cc"))
	assert.True(t, r.IsCompiler("icx"))
	assert.True(t, r.IsCompiler("cc"))
	assert.False(t, r.IsCompiler("my-cc-wrapper"))
}

func TestRecognizer_InvalidPattern(t *testing.T) {
	_, err := analyzer.NewRecognizer(`^(unclosed$`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidCompilerPattern.Error())
}
