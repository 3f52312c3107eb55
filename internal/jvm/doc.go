// Package jvm reads metadata from a Java installation directory: the
// JAVA_VERSION, IMPLEMENTOR and OS_ARCH entries of its release file, and
// whether it ships java and javac. When the release file is missing,
// ExecProbe asks the java binary itself. It describes installations; it
// does not pick one.
package jvm
