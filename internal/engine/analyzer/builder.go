package analyzer

import (
	"path/filepath"

	"go.trai.ch/cdb/internal/core/domain"
)

// Build assembles the record of a filtered compile unit.
//
// The command is the base name of program, the mode flag of the unit's phase,
// the retained flags, the output flag and finally the source file. Directory
// and file are taken as captured.
func Build(program string, unit domain.CompileUnit, dir string) domain.CompilationRecord {
	size := 2 + len(unit.RetainedFlags)*2 + 2 + 1
	command := make([]string, 0, size)

	command = append(command, filepath.Base(program), unit.Phase.ModeFlag())
	for _, flag := range unit.RetainedFlags {
		command = append(command, flag.Args()...)
	}
	if unit.Output != nil {
		command = append(command, unit.Output.Args()...)
	}
	command = append(command, unit.SourceFile)

	return domain.CompilationRecord{
		Command:   command,
		Directory: domain.NewInternedString(dir),
		File:      unit.SourceFile,
	}
}
