// Package gemini implements the generation.TextGenerator interface on top
// of Google's Gemini API. It is the only package that talks to the model;
// prompt construction and response validation live in the generation
// package so this boundary stays a thin transport.
package gemini
