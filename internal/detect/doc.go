// Package detect implements the installation suppliers jdkx registers with
// the toolchain registry: configured paths and environment variables,
// JAVA_HOME, and directory scans of SDKMAN!, asdf, jabba, provisioned JDKs
// and the operating system's JVM locations. Suppliers only report
// candidates; the registry validates them.
package detect
