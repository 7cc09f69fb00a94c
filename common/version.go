package common

// Version of the seeder, shown by --version and on the dashboard
const Version = "xseedc-0.9.3a"
