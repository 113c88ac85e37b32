// Package connectors holds clients for the remote content systems docprep
// reads from. Each connector lives in its own subpackage and implements
// driven.ContentSource.
package connectors
