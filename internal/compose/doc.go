// Package compose reconciles a template's declared variable set with the
// fixed context computed from the environment. The result is the complete
// variable mapping handed to the external renderer: every manifest key is
// covered (the renderer's non-interactive mode requires totality), and fixed
// values always win on overlap.
package compose
