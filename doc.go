/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Package documentation
 */

/*
Package goipp implements the IPP core protocol, as defined by RFC 8010
(binary encoding) and RFC 8011 (semantics), with extensions from PWG
5100.x and its errata.

It doesn't implement high-level operations, such as "print a document",
"cancel print job" and so on. Its scope is limited to proper generation
and parsing of IPP requests and responses: the typed value model and the
tagged binary parser/serializer that translate between in-memory
attribute trees and the IPP wire format.

	IPP protocol uses the following simple model:
	1. Send a request
	2. Receive a response

Request and response both have a similar format, represented here by
type Message, with the only difference being that the Code field of that
Message is the Operation code in a request and the Status code in a
response. So most of the API is common for request and response messages.

Example:

	package main

	import (
		"bytes"
		"net/http"
		"os"

		"github.com/vivianlazaras/goipp"
	)

	const uri = "http://192.168.1.102:631"

	// Build IPP Get-Printer-Attributes request
	func makeRequest() ([]byte, error) {
		m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetPrinterAttributes, 1)
		m.Operation.Add(goipp.MakeAttribute("attributes-charset",
			goipp.TagCharset, goipp.String("utf-8")))
		m.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
			goipp.TagLanguage, goipp.String("en-US")))
		m.Operation.Add(goipp.MakeAttribute("printer-uri",
			goipp.TagURI, goipp.String(uri)))
		m.Operation.Add(goipp.MakeAttribute("requested-attributes",
			goipp.TagKeyword, goipp.String("all")))

		return m.EncodeBytes()
	}

	func check(err error) {
		if err != nil {
			panic(err)
		}
	}

	func main() {
		request, err := makeRequest()
		check(err)

		resp, err := http.Post(uri, goipp.ContentType, bytes.NewBuffer(request))
		check(err)

		var respMsg goipp.Message
		err = respMsg.Decode(resp.Body)
		check(err)

		respMsg.Print(os.Stdout, false)
	}

The core deliberately does not know about HTTP/HTTPS transport, URI
parsing, CUPS-specific operation constructors, the printer/job state
machine, or charset translation beyond UTF-8-lossy decoding: those are
left to collaborators that build on top of this package.
*/
package goipp
