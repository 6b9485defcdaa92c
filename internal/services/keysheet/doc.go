// Package keysheet manages named, stored machine settings.
//
// A key sheet plays the role of a line on a historical monthly key list: the
// operator saves the day's settings once under a name and refers to it by
// that name when enciphering. Settings are validated before they are stored.
package keysheet
