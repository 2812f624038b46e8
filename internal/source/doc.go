// Package source classifies a template source string into one of the accepted
// forms (local directory, git URL, mercurial URL, file URL, zip archive) and
// normalizes it into a fetchable location. Classification is a pure function
// of the string's syntax except for the local-directory readability probe;
// no network access happens here.
package source
