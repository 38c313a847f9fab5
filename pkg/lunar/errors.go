package lunar

import "errors"

var (
	// ErrConversion indicates the date cannot be represented in the target
	// calendar (out of table range, invalid day, or absent leap month).
	ErrConversion = errors.New("lunar: conversion failed")
)
