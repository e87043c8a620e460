// Package wordlist makes the dictionary available as a local file.
//
// A Source downloads a zip archive from a configured URL, unpacks the word
// list member next to it, and reuses the unpacked file on later runs. The
// download runs at most once per Source and is serialized across processes
// with an advisory lock file, so concurrent invocations never unpack over each
// other. Nothing here retries: network and filesystem failures are returned to
// the caller as-is.
package wordlist
