// Package toolchain maintains the process-wide registry of local Java
// installations. A Registry runs its InstallationSuppliers once, drops
// candidates that are missing or not directories, canonicalizes the rest and
// caches the de-duplicated set. It never chooses between installations;
// selection belongs to callers.
package toolchain
