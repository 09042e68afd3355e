package msvc

import (
	"regexp"
)

// diagPattern matches MSVC compiler and linker diagnostics, with or without
// the msbuild "3>" project prefix.
// Examples:
//
//	C:\src\main.cpp(42): error C2065: 'x': undeclared identifier
//	main.cpp(42,7): warning C4244: conversion from 'double' to 'int'
//	3>util.cpp(7,1,7,12): error C2143: syntax error: missing ';'
//	main.cpp(12): note: see declaration of 'x'
//
// Group 1: file path
// Group 2: location numbers (1, 2, or 4 comma-separated values)
// Group 3: severity word
// Group 4: tool code (optional; notes carry none)
// Group 5: message
var diagPattern = regexp.MustCompile(`^\s*(?:\d+>)?\s*([^\s>].*?)\((\d+(?:,\d+){0,3})\)\s*:\s+((?:fatal )?error|warning|note|info)(?:\s+(\w{1,2}\d+))?\s*:\s*(.*)$`)
