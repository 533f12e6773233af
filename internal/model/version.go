package model

// Version is the released version of refindorder.
const Version = "0.2.0"
