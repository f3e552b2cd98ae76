// Package checksum decodes and combines the MD5 digests that base set manifests
// declare for their files.
//
// # Decoding
//
// Manifests carry one hexadecimal checksum per file. Decode accepts exactly
// 2*Size characters from [0-9a-fA-F], big nibble first, and fails with
// ErrMalformed on anything else. A failed decode means the whole manifest is
// malformed.
//
// # Combining
//
// Fold XOR-combines the digests of every file in a set into a single digest,
// which is how remote content sources identify a complete set.
//
// # Usage
//
//	d, err := checksum.Decode("00112233445566778899aabbccddeeff")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d)
package checksum
