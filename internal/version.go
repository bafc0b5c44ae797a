package internal

// Version is the version of the trie tools.
const Version = "0.1.0"
