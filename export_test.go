package openssl

// LibUser is ERR_LIB_USER, the first library number free for applications.
const LibUser = 128
