// Package toolchain runs the Node.js tooling a scaffold depends on: npm for
// manifest initialization and dependency installation, and npx for the
// optional React client generator. The Runner interface isolates process
// execution so tests can substitute a recording fake.
package toolchain
