package services

// Services defined in this package:
// - StudentService: validation and conversion in front of the student repository
