// Package normalisers holds converters that turn a remote page body into
// markdown. Each format lives in its own subpackage and implements
// driven.Converter.
package normalisers
