package domain

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// FlagClass is the semantic class of a compiler flag.
type FlagClass uint8

const (
	// ClassGeneric flags are retained verbatim.
	ClassGeneric FlagClass = iota
	// ClassPlain marks a non-flag argument that is neither source nor object.
	ClassPlain
	// ClassCompileOnly is -c.
	ClassCompileOnly
	// ClassAssembleOnly is -S.
	ClassAssembleOnly
	// ClassPreprocessOnly is -E.
	ClassPreprocessOnly
	// ClassDependency flags emit dependency information next to the object.
	ClassDependency
	// ClassDependencyOnly flags (-M, -MM) emit dependency information instead of an object.
	ClassDependencyOnly
	// ClassOutput is -o.
	ClassOutput
	// ClassLink flags only matter to the linker.
	ClassLink
	// ClassLinkIndicator flags only matter to the linker and make the invocation a link.
	ClassLinkIndicator
	// ClassQuery flags ask the driver for information.
	ClassQuery
	// ClassQueryAlone flags (-v) ask for information only when nothing else is given.
	ClassQueryAlone
	// ClassInternal flags mark frontend-internal invocations spawned by the driver.
	ClassInternal
)

// Dropped reports whether flags of this class are removed from a compilation record.
func (c FlagClass) Dropped() bool {
	switch c {
	case ClassDependency, ClassDependencyOnly, ClassLink, ClassLinkIndicator,
		ClassQuery, ClassInternal, ClassCompileOnly, ClassAssembleOnly:
		return true
	default:
		return false
	}
}

// FlagSpec describes how a flag is spelled and what it means.
type FlagSpec struct {
	// Arity is 1 when the flag takes an argument.
	Arity int
	// Joinable flags also accept the argument glued to the name.
	Joinable bool
	Class    FlagClass
}

// flagTable maps exact flag names to their spec.
var flagTable = map[string]FlagSpec{
	// Phase selection.
	"-c": {Class: ClassCompileOnly},
	"-S": {Class: ClassAssembleOnly},
	"-E": {Class: ClassPreprocessOnly},

	// Dependency generation.
	"-M":   {Class: ClassDependencyOnly},
	"-MM":  {Class: ClassDependencyOnly},
	"-MD":  {Class: ClassDependency},
	"-MMD": {Class: ClassDependency},
	"-MG":  {Class: ClassDependency},
	"-MP":  {Class: ClassDependency},
	"-MT":  {Arity: 1, Joinable: true, Class: ClassDependency},
	"-MQ":  {Arity: 1, Joinable: true, Class: ClassDependency},
	"-MF":  {Arity: 1, Joinable: true, Class: ClassDependency},
	"-MJ":  {Arity: 1, Joinable: true, Class: ClassDependency},

	// Output.
	"-o": {Arity: 1, Joinable: true, Class: ClassOutput},

	// Preprocessor and search paths.
	"-I":                 {Arity: 1, Joinable: true},
	"-D":                 {Arity: 1, Joinable: true},
	"-U":                 {Arity: 1, Joinable: true},
	"-F":                 {Arity: 1, Joinable: true},
	"-B":                 {Arity: 1, Joinable: true},
	"-isystem":           {Arity: 1, Joinable: true},
	"-iquote":            {Arity: 1, Joinable: true},
	"-idirafter":         {Arity: 1, Joinable: true},
	"-iprefix":           {Arity: 1, Joinable: true},
	"-iwithprefix":       {Arity: 1, Joinable: true},
	"-iwithprefixbefore": {Arity: 1, Joinable: true},
	"-imultilib":         {Arity: 1, Joinable: true},
	"-isysroot":          {Arity: 1, Joinable: true},
	"-include":           {Arity: 1},
	"-imacros":           {Arity: 1},
	"--sysroot":          {Arity: 1},
	"-x":                 {Arity: 1, Joinable: true},
	"-undef":             {},

	// Pass-through to other tools.
	"-Xclang":        {Arity: 1},
	"-Xpreprocessor": {Arity: 1},
	"-Xassembler":    {Arity: 1},
	"-arch":          {Arity: 1},
	"-target":        {Arity: 1},
	"-aux-info":      {Arity: 1},
	"--param":        {Arity: 1},
	"-dumpbase":      {Arity: 1},
	"-dumpdir":       {Arity: 1},

	// Linking.
	"-l":                     {Arity: 1, Joinable: true, Class: ClassLink},
	"-L":                     {Arity: 1, Joinable: true, Class: ClassLink},
	"-u":                     {Arity: 1, Joinable: true, Class: ClassLink},
	"-T":                     {Arity: 1, Joinable: true, Class: ClassLink},
	"-z":                     {Arity: 1, Class: ClassLink},
	"-Xlinker":               {Arity: 1, Class: ClassLink},
	"-install_name":          {Arity: 1, Class: ClassLink},
	"-soname":                {Arity: 1, Class: ClassLink},
	"-current_version":       {Arity: 1, Class: ClassLink},
	"-compatibility_version": {Arity: 1, Class: ClassLink},
	"-static":                {Class: ClassLink},
	"-rdynamic":              {Class: ClassLink},
	"-dynamic":               {Class: ClassLink},
	"-s":                     {Class: ClassLink},
	"-pie":                   {Class: ClassLink},
	"-no-pie":                {Class: ClassLink},
	"-shared":                {Class: ClassLinkIndicator},
	"--shared":               {Class: ClassLinkIndicator},
	"-dynamiclib":            {Class: ClassLinkIndicator},
	"-bundle":                {Class: ClassLinkIndicator},
	"-r":                     {Class: ClassLinkIndicator},

	// Driver queries.
	"-###":             {Class: ClassQuery},
	"--version":        {Class: ClassQuery},
	"--help":           {Class: ClassQuery},
	"-dumpversion":     {Class: ClassQuery},
	"-dumpfullversion": {Class: ClassQuery},
	"-dumpmachine":     {Class: ClassQuery},
	"-dumpspecs":       {Class: ClassQuery},
	"-v":               {Class: ClassQueryAlone},

	// Frontend-internal invocations.
	"-cc1":   {Class: ClassInternal},
	"-cc1as": {Class: ClassInternal},
}

// prefixTable maps flag prefixes whose remainder is part of the flag itself.
var prefixTable = map[string]FlagSpec{
	"-Wl,":      {Class: ClassLink},
	"-static-":  {Class: ClassLink},
	"-fuse-ld=": {Class: ClassLink},
	"-print-":   {Class: ClassQuery},
	"--print-":  {Class: ClassQuery},
}

// joinableNames lists joinable flags, longest first, so -isystem wins over -I-like prefixes.
var joinableNames = sortedByLength(flagTable, func(spec FlagSpec) bool { return spec.Joinable })

// prefixNames lists prefixTable keys, longest first.
var prefixNames = sortedByLength(prefixTable, func(FlagSpec) bool { return true })

func sortedByLength(table map[string]FlagSpec, keep func(FlagSpec) bool) []string {
	names := make([]string, 0, len(table))
	for name, spec := range table {
		if keep(spec) {
			names = append(names, name)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}

// LookupFlag returns the spec for an exact flag name.
func LookupFlag(name string) (FlagSpec, bool) {
	spec, ok := flagTable[name]
	return spec, ok
}

// LookupJoined finds the joinable flag that arg starts with and returns the flag name
// and the glued remainder. The remainder is never empty.
func LookupJoined(arg string) (string, string, FlagSpec, bool) {
	for _, name := range joinableNames {
		if len(arg) > len(name) && strings.HasPrefix(arg, name) {
			return name, arg[len(name):], flagTable[name], true
		}
	}
	return "", "", FlagSpec{}, false
}

// LookupPrefix finds the prefix-class flag that arg starts with.
func LookupPrefix(arg string) (string, FlagSpec, bool) {
	for _, name := range prefixNames {
		if strings.HasPrefix(arg, name) {
			return name, prefixTable[name], true
		}
	}
	return "", FlagSpec{}, false
}

// InputKind classifies a plain argument by its file name.
type InputKind uint8

const (
	// InputOther is neither a source file nor a linker input.
	InputOther InputKind = iota
	// InputSource is a translation unit the compiler can compile.
	InputSource
	// InputObject is an object file or library handed to the linker.
	InputObject
)

// sourceExtensions is case sensitive: .C is C++ while .c is C, .S is preprocessed assembly.
var sourceExtensions = map[string]struct{}{
	".c": {}, ".i": {},
	".cc": {}, ".cp": {}, ".cxx": {}, ".cpp": {}, ".CPP": {}, ".c++": {}, ".C": {}, ".ii": {},
	".m": {}, ".mi": {}, ".mm": {}, ".M": {}, ".mii": {},
	".s": {}, ".S": {}, ".sx": {},
	".cu": {},
}

var objectExtensions = map[string]struct{}{
	".o": {}, ".obj": {}, ".lo": {},
	".a": {}, ".la": {}, ".lib": {},
	".so": {}, ".dylib": {}, ".dll": {},
}

// ClassifyInput returns the kind of a plain argument.
func ClassifyInput(arg string) InputKind {
	ext := filepath.Ext(arg)
	if _, ok := sourceExtensions[ext]; ok {
		return InputSource
	}
	if _, ok := objectExtensions[ext]; ok {
		return InputObject
	}
	// Versioned shared libraries such as libfoo.so.1.
	if strings.Contains(filepath.Base(arg), ".so.") {
		return InputObject
	}
	return InputOther
}
