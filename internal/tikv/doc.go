// Package tikv holds the build policy: the fixed configuration that
// reproduces the official TiKV release build, and the assembler that
// turns it into a two-stage pipeline.
//
// The builder stage provisions a CentOS 7.6 toolchain environment pinned
// by the source tree's rust-toolchain manifest and runs the release
// build; the runtime stage imports the two produced binaries onto a
// minimal glibc base. Assembly is a pure function of the configuration
// and cannot fail; every value is a compile-time constant of the
// generator.
package tikv
