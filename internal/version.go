package internal

// Version is the gurume release version.
const Version = "0.4.0"
