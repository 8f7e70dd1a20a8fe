// Package bamnames holds the version shared by the bamnames tools.
package bamnames

// Version of the bamnames tools.
const Version = "0.2.0"
