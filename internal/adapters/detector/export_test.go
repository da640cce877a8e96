package detector

// Detect exposes the pure detection logic for testing.
var Detect = detect
