// Package commands discovers and executes custom project commands.
//
// Custom commands live in .space/commands/ inside the project directory and
// can be written in any language (shell, Python, JavaScript, TypeScript, Go,
// Ruby, Perl). The executor picks an interpreter from the file extension,
// passes the project context as JSON on the child's stdin, and exposes the
// same data through SPACE_* environment variables for commands that prefer
// not to parse JSON.
package commands
