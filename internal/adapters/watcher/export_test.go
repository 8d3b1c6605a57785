package watcher

// ConvertEventExported exposes convertEvent for tests.
var ConvertEventExported = convertEvent
