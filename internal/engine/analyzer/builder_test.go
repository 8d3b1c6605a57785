package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/engine/analyzer"
)

func TestBuild_CanonicalOrder(t *testing.T) {
	unit := domain.CompileUnit{
		SourceFile: "src/lib.c",
		Output:     &domain.FlagToken{Name: "-o", Value: "lib.o", HasValue: true, Spelling: domain.SpellingSeparate},
		Phase:      domain.PhaseCompile,
		RetainedFlags: []domain.FlagToken{
			{Name: "-fpic"},
			{Name: "-I", Value: "inc", HasValue: true, Spelling: domain.SpellingJoined},
		},
	}

	rec := analyzer.Build("/usr/local/bin/cc", unit, "/work")

	assert.Equal(t, []string{"cc", "-c", "-fpic", "-Iinc", "-o", "lib.o", "src/lib.c"}, rec.Command)
	assert.Equal(t, "/work", rec.Directory.String())
	assert.Equal(t, "src/lib.c", rec.File)
}

func TestBuild_AssembleMode(t *testing.T) {
	unit := domain.CompileUnit{SourceFile: "main.c", Phase: domain.PhaseAssemble}

	rec := analyzer.Build("gcc", unit, "/work")

	assert.Equal(t, "gcc -S main.c", rec.CommandLine())
}
