package domain

// Identity is the lowercase hex public key of a network participant. Display
// encodings such as npub are decoded at the edge; everything inside the
// module compares identities in this one form.
type Identity string
